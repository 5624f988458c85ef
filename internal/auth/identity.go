package auth

// Identity - явная идентичность вызывающего, передается параметром в
// сервисы модерации и рейтингов вместо скрытого глобального состояния.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// Anonymous возвращает пустую идентичность (неаутентифицированный вызов)
func Anonymous() Identity {
	return Identity{}
}

// IsAuthenticated reports whether the caller is logged in.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != ""
}
