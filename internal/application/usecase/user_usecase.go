package usecase

import (
	"time"

	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// UserUseCase administración de usuarios del sistema. El alta pasa por
// auth.AuthUseCase (hash de password); aquí solo lectura y edición.
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo}
}

// GetByID obtiene un usuario con el nombre de su rol resuelto.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	resp := toUserResponse(user)
	if role, err := uc.roleRepo.GetByID(user.RoleID); err == nil && role != nil {
		resp.RoleName = role.Name
	}
	return resp, nil
}

// Update actualiza nombre, email, rol y estado de un usuario.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Email != user.Email {
		other, _ := uc.repo.FindByEmail(in.Email)
		if other != nil && other.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	role, err := uc.roleRepo.GetByID(in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrInvalidReference
	}
	user.Name = in.Name
	user.Email = in.Email
	user.RoleID = in.RoleID
	user.Active = in.Active
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	resp.RoleName = role.Name
	return resp, nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	roleNames := map[string]string{}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		resp := toUserResponse(u)
		name, ok := roleNames[u.RoleID]
		if !ok {
			if role, err := uc.roleRepo.GetByID(u.RoleID); err == nil && role != nil {
				name = role.Name
			}
			roleNames[u.RoleID] = name
		}
		resp.RoleName = name
		items = append(items, *resp)
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		RoleID:    u.RoleID,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
