package services

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
)

// ensureRoleRecord creates the role record matching the account's role when
// it is missing. Signup and the role resolver share these defaults so a
// healed account is indistinguishable from a freshly created one.
func ensureRoleRecord(ctx context.Context, tx *gorm.DB, repo repositories.Repository, account *models.Account, role models.UserRole) error {
	switch role {
	case models.RoleTeacher:
		_, err := repo.Teacher().GetByAccount(ctx, tx, account.ID)
		if err == nil {
			return nil
		}
		if !repositories.IsNotFoundError(err) {
			return err
		}
		teacher := &models.Teacher{
			AccountID:      account.ID,
			Specialization: "Web Development",
			Bio:            fmt.Sprintf("Experienced instructor %s", displayName(account)),
		}
		return repo.Teacher().Create(ctx, tx, teacher)

	case models.RoleCompany:
		_, err := repo.Company().GetByAccount(ctx, tx, account.ID)
		if err == nil {
			return nil
		}
		if !repositories.IsNotFoundError(err) {
			return err
		}
		company := &models.Company{
			AccountID:   account.ID,
			CompanyName: displayName(account),
		}
		return repo.Company().Create(ctx, tx, company)

	default:
		_, err := repo.Student().GetByAccount(ctx, tx, account.ID)
		if err == nil {
			return nil
		}
		if !repositories.IsNotFoundError(err) {
			return err
		}
		student := &models.Student{
			AccountID: account.ID,
			Progress:  datatypes.JSONMap{},
		}
		return repo.Student().Create(ctx, tx, student)
	}
}

func displayName(account *models.Account) string {
	if name := account.FullName(); name != "" {
		return name
	}
	return account.Username
}

// destinationForRole maps a role to its dashboard path.
func destinationForRole(role models.UserRole) string {
	switch role {
	case models.RoleTeacher:
		return "/teacher/"
	case models.RoleCompany:
		return "/company/"
	case models.RoleStudent:
		return "/student/"
	default:
		return "/"
	}
}
