package dto

import "github.com/jhoicas/Inversiones-api/internal/domain/entity"

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Position   string `json:"position"`
	ImageURL   string `json:"image_url,omitempty"`
}

// LoginRequest entrada para login. Redirect es la ruta guardada por el guard para reanudar.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Redirect string `json:"redirect"`
}

// LoginResponse token JWT, usuario y ruta a la que continuar.
type LoginResponse struct {
	Token      string       `json:"token"`
	User       UserResponse `json:"user"`
	RedirectTo string       `json:"redirect_to"`
}

// AuthStateResponse AuthState serializado para GET /api/auth/me.
type AuthStateResponse struct {
	User            *UserResponse `json:"user"`
	IsAuthenticated bool          `json:"is_authenticated"`
	IsLoading       bool          `json:"is_loading"`
	Error           string        `json:"error,omitempty"`
}

// LoginPageResponse respuesta de GET /login: indica cómo autenticarse y a dónde volver.
type LoginPageResponse struct {
	LoginEndpoint string `json:"login_endpoint"`
	Redirect      string `json:"redirect,omitempty"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ToUserResponse mapea la entidad a DTO; nil si u es nil.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		Department: u.Department,
		Position:   u.Position,
		ImageURL:   u.ImageURL,
	}
}

// ToAuthStateResponse serializa un AuthState.
func ToAuthStateResponse(st entity.AuthState) AuthStateResponse {
	return AuthStateResponse{
		User:            ToUserResponse(st.User),
		IsAuthenticated: st.IsAuthenticated,
		IsLoading:       st.IsLoading,
		Error:           st.Error,
	}
}
