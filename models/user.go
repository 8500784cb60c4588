package models

// UserRole — роли из JWT claims. Выдача токенов живёт во внешнем
// сервисе аутентификации, здесь роли только проверяются.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleOrganizer UserRole = "organizer"
	RoleViewer    UserRole = "viewer"
)
