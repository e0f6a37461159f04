package domain

// Customer пользователь, от имени которого отправляется бронирование
// Данные берутся из bearer-токена Holidaze API; сам токен проверяет удаленный API
type Customer struct {
	Name        string
	Email       string
	AccessToken string
}

// Identity ключ пользователя для журнала заявок: email, если есть, иначе имя
func (c *Customer) Identity() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Name
}

// Profile профиль пользователя, подтвержденный Holidaze API по его токену
type Profile struct {
	Name  string
	Email string
}
