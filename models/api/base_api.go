package apimodels

// Response is the error envelope of the REST API. Successful calls return
// the bare entity; failures return {"status":"fail","message":"..."}.
type Response struct {
	Status  string `json:"status"`            // always "fail"
	Message string `json:"message,omitempty"` // error message
}

const StatusFail = "fail"

func NewError(message string) Response {
	return Response{
		Status:  StatusFail,
		Message: message,
	}
}
