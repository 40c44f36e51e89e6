package serverutils

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type ErrorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{Success: true, Message: message, Data: data}
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{Success: false, Code: code, Message: message}
}
