// Package httperr carries the error envelope the middleware fallback paths
// emit. The wire shape matches the handlers' own responses: {"error": "..."}.
package httperr

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

func New(status int, msg string) Response {
	return Response{Status: status, Error: msg}
}
