package models

// Error taxonomy returned by every service operation. Each kind carries a
// stable machine-readable code alongside the human-readable message; the HTTP
// helper maps the kind to a status code and the GraphQL layer exposes the
// code through error extensions.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

func (e ErrorValidation) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "BAD_USER_INPUT"}
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

func (e ErrorUnauthorized) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "UNAUTHENTICATED"}
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

func (e ErrorForbidden) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "FORBIDDEN"}
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

func (e ErrorNotFound) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "NOT_FOUND"}
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

func (e ErrorConflict) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "CONFLICT"}
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string { return e.Message }

func (e ErrorInternalServer) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "INTERNAL_SERVER_ERROR"}
}
