// seedadmin crea el rol Administrador (con todos los módulos) y el usuario
// administrador inicial. Idempotente: si ya existen, no los duplica.
//
// Uso:
//
//	ADMIN_EMAIL=admin@tienda.com ADMIN_PASSWORD=cambiar123 go run ./cmd/seedadmin
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/infrastructure/postgres"
	"github.com/tu-usuario/tienda-ropa/pkg/config"
)

func main() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_EMAIL y ADMIN_PASSWORD son obligatorios")
		os.Exit(1)
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrador"
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	allModules := []string{
		entity.ModuleProducts,
		entity.ModulePurchases,
		entity.ModuleSales,
		entity.ModuleReturns,
		entity.ModuleCustomers,
		entity.ModuleSuppliers,
		entity.ModuleUsers,
		entity.ModuleRoles,
		entity.ModuleDashboard,
	}

	role, err := roleRepo.GetByName(entity.RoleAdmin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar rol: %v\n", err)
		os.Exit(1)
	}
	if role == nil {
		role = &entity.Role{
			ID:     uuid.New().String(),
			Name:   entity.RoleAdmin,
			Active: true,
		}
		if err := roleRepo.Create(role); err != nil {
			fmt.Fprintf(os.Stderr, "crear rol: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("rol %q creado (%s)\n", role.Name, role.ID)
	} else {
		fmt.Printf("rol %q ya existe (%s)\n", role.Name, role.ID)
	}
	if err := roleRepo.SetPermissions(role.ID, allModules); err != nil {
		fmt.Fprintf(os.Stderr, "asignar permisos: %v\n", err)
		os.Exit(1)
	}

	existing, err := userRepo.FindByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("usuario %s ya existe (%s), nada que hacer\n", email, existing.ID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		RoleID:       role.ID,
		Active:       true,
	}
	if err := userRepo.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "crear usuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("usuario administrador %s creado (%s)\n", user.Email, user.ID)
}
