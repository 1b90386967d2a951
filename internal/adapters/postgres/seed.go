package postgres_adapter

import (
	"context"
	"fmt"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
	"aqar-service/internal/seeddata"
)

// SeedIfEmpty installs the default admin, site settings, location taxonomy,
// property types and sample listings — but only when the admins table is
// empty, which makes first-boot seeding idempotent and side-effect-free on
// every later boot.
func (s *Storage) SeedIfEmpty(ctx context.Context, admin *domain.Admin) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresStorage",
		"method":    "SeedIfEmpty",
	})

	count, err := s.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to check admins table: %w", err)
	}
	if count > 0 {
		logger.Debug("Admins present, skipping seed.", nil)
		return nil
	}

	logger.Info("Empty database detected, seeding defaults.", nil)

	if _, err := s.CreateAdmin(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	for _, st := range seeddata.SiteSettings() {
		if _, err := s.UpsertSetting(ctx, st.Key, st.Value); err != nil {
			return fmt.Errorf("failed to seed setting %q: %w", st.Key, err)
		}
	}

	// The sample properties reference governorates/directorates by seed
	// order; remember the generated ids to rewrite the references.
	governorateIDs := make([]int, 0)
	directorateIDs := make([]int, 0)
	for _, g := range seeddata.Governorates() {
		gov, err := s.CreateGovernorate(ctx, &domain.Governorate{NameAr: g.NameAr, NameEn: g.NameEn})
		if err != nil {
			return fmt.Errorf("failed to seed governorate %q: %w", g.NameAr, err)
		}
		governorateIDs = append(governorateIDs, gov.ID)

		for _, d := range g.Directorates {
			dir, err := s.CreateDirectorate(ctx, &domain.Directorate{
				GovernorateID: gov.ID,
				NameAr:        d.NameAr,
				NameEn:        d.NameEn,
			})
			if err != nil {
				return fmt.Errorf("failed to seed directorate %q: %w", d.NameAr, err)
			}
			directorateIDs = append(directorateIDs, dir.ID)
		}
	}

	for _, t := range seeddata.PropertyTypes() {
		seedType := t
		if _, err := s.CreatePropertyType(ctx, &seedType); err != nil {
			return fmt.Errorf("failed to seed property type %q: %w", t.NameAr, err)
		}
	}

	for _, p := range seeddata.SampleProperties() {
		seedProp := p
		if seedProp.GovernorateID != nil {
			id := governorateIDs[*seedProp.GovernorateID-1]
			seedProp.GovernorateID = &id
		}
		if seedProp.DirectorateID != nil {
			id := directorateIDs[*seedProp.DirectorateID-1]
			seedProp.DirectorateID = &id
		}
		if _, err := s.CreateProperty(ctx, &seedProp); err != nil {
			return fmt.Errorf("failed to seed property %q: %w", p.Title, err)
		}
	}

	logger.Info("Seeding finished.", nil)
	return nil
}
