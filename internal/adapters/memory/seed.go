package memory_adapter

import (
	"time"

	"aqar-service/internal/core/domain"
	"aqar-service/internal/seeddata"
)

// seed installs the default taxonomy, site settings and sample listings.
// Runs once at construction, before the store is shared, so no locking.
func (s *Storage) seed() {
	now := time.Now().UTC()

	// Governorates with their directorates; the seed references ids by
	// insertion order, which matches the auto-increment counters here.
	for _, g := range seeddata.Governorates() {
		s.nextGovernorateID++
		gov := &domain.Governorate{
			ID:        s.nextGovernorateID,
			NameAr:    g.NameAr,
			NameEn:    g.NameEn,
			CreatedAt: now,
		}
		s.governorates[gov.ID] = gov

		for _, d := range g.Directorates {
			s.nextDirectorateID++
			dir := &domain.Directorate{
				ID:            s.nextDirectorateID,
				GovernorateID: gov.ID,
				NameAr:        d.NameAr,
				NameEn:        d.NameEn,
				CreatedAt:     now,
			}
			s.directorates[dir.ID] = dir
		}
	}

	for _, t := range seeddata.PropertyTypes() {
		s.nextPropertyTypeID++
		stored := t
		stored.ID = s.nextPropertyTypeID
		stored.CreatedAt = now
		s.propertyTypes[stored.ID] = &stored
	}

	for _, st := range seeddata.SiteSettings() {
		s.nextSettingID++
		s.settings[s.nextSettingID] = &domain.SiteSetting{
			ID:        s.nextSettingID,
			Key:       st.Key,
			Value:     st.Value,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	for _, p := range seeddata.SampleProperties() {
		s.nextPropertyID++
		stored := cloneProperty(&p)
		stored.ID = s.nextPropertyID
		stored.CreatedAt = now
		stored.Normalize()
		s.properties[stored.ID] = stored
	}
}
