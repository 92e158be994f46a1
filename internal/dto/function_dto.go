// FILE: internal/dto/function_dto.go
package dto

type DeleteUserRequest struct {
	UserId string `json:"userId"`
	// accepted for callers that send snake_case
	UserIdSnake string `json:"user_id"`
}

type DeleteUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserId  string `json:"userId,omitempty"`
	// Steps lists each cleanup step with the number of rows removed.
	Steps []DeleteUserStep `json:"steps,omitempty"`
	Error string           `json:"error,omitempty"`
	Step  string           `json:"step,omitempty"`
}

type DeleteUserStep struct {
	Name    string `json:"name"`
	Deleted int64  `json:"deleted"`
}

type PatchSchemaResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Added   map[string][]string `json:"added,omitempty"`
	Error   string              `json:"error,omitempty"`
}
