package userservice

// RoleAdmin роль пользователя, которому разрешено менять расписание
const RoleAdmin = "admin"

// User модель пользователя из UserService
type User struct {
	TgUserID int64  `json:"tg_user_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// IsAdmin проверяет роль администратора
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
