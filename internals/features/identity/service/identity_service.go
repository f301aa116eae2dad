package service

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymku_backend/internals/features/identity/model"
	"gymku_backend/internals/features/identity/resolver"
)

// ResolvedIdentity is what downstream handlers see in locals.
type ResolvedIdentity struct {
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
}

type IdentityService struct {
	DB       *gorm.DB
	Verifier TokenVerifier
}

func NewIdentityService(db *gorm.DB, verifier TokenVerifier) *IdentityService {
	return &IdentityService{DB: db, Verifier: verifier}
}

// Resolve verifies the bearer credential and derives the canonical role and
// display name from provider metadata, the employee roster, and the mirrored
// provider row. The mirror write is an ON CONFLICT upsert on subject id, so
// concurrent first requests from the same subject cannot duplicate rows.
func (s *IdentityService) Resolve(ctx context.Context, token string) (*ResolvedIdentity, error) {
	profile, err := s.Verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	email := resolver.NormalizeEmail(profile.Email)

	var employee model.EmployeeModel
	employeeExists := true
	if err := s.DB.WithContext(ctx).
		Where("LOWER(employee_email) = ?", email).
		First(&employee).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		employeeExists = false
	}

	var cached model.ClerkUserModel
	cachedExists := true
	if err := s.DB.WithContext(ctx).
		Where("clerk_user_subject_id = ?", profile.SubjectID).
		First(&cached).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cachedExists = false
	}

	role := resolver.ResolveRole(resolver.Inputs{
		MetaRole:         profile.MetaRole,
		EmployeeExists:   employeeExists,
		EmployeeElevated: employee.EmployeeWantsAdminAccess,
		CachedRole:       cached.ClerkUserRole,
	})
	name := resolver.ResolveDisplayName(resolver.NameInputs{
		EmployeeName: employee.EmployeeFullName,
		CachedName:   cached.ClerkUserFullName,
		ProviderName: profile.FullName,
		Email:        email,
	})

	if !cachedExists || cached.ClerkUserRole != role || cached.ClerkUserFullName != name || cached.ClerkUserEmail != email {
		row := model.ClerkUserModel{
			ClerkUserSubjectID: profile.SubjectID,
			ClerkUserEmail:     email,
			ClerkUserFullName:  name,
			ClerkUserRole:      role,
		}
		if err := s.DB.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "clerk_user_subject_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"clerk_user_email", "clerk_user_full_name", "clerk_user_role"}),
			}).
			Create(&row).Error; err != nil {
			// Mirror write failing must not fail the request.
			log.Printf("[WARNING] clerk user mirror upsert failed: %v", err)
		}
	}

	return &ResolvedIdentity{
		SubjectID: profile.SubjectID,
		Email:     email,
		Role:      role,
		FullName:  name,
	}, nil
}
