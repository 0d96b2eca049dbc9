package postgres

import (
	"folio/internal/domain/entity"
	"folio/internal/infra/persistence/model"
)

func toCredentialDomain(m *model.AdminCredentialModel) *entity.AdminCredential {
	return &entity.AdminCredential{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromCredentialDomain(c *entity.AdminCredential) *model.AdminCredentialModel {
	return &model.AdminCredentialModel{
		ID:           c.ID,
		Username:     c.Username,
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toSessionDomain(m *model.AdminSessionModel) *entity.AdminSession {
	return &entity.AdminSession{
		ID:        m.ID,
		TokenHash: m.TokenHash,
		Username:  m.Username,
		ExpiresAt: m.ExpiresAt,
		Revoked:   m.Revoked,
		CreatedAt: m.CreatedAt,
	}
}

func fromSessionDomain(s *entity.AdminSession) *model.AdminSessionModel {
	return &model.AdminSessionModel{
		ID:        s.ID,
		TokenHash: s.TokenHash,
		Username:  s.Username,
		ExpiresAt: s.ExpiresAt,
		Revoked:   s.Revoked,
		CreatedAt: s.CreatedAt,
	}
}

func toResetDomain(m *model.PasswordResetModel) *entity.PasswordResetToken {
	return &entity.PasswordResetToken{
		ID:        m.ID,
		TokenHash: m.TokenHash,
		Username:  m.Username,
		ExpiresAt: m.ExpiresAt,
		Used:      m.Used,
		UsedAt:    m.UsedAt,
		CreatedAt: m.CreatedAt,
	}
}

func fromResetDomain(t *entity.PasswordResetToken) *model.PasswordResetModel {
	return &model.PasswordResetModel{
		ID:        t.ID,
		TokenHash: t.TokenHash,
		Username:  t.Username,
		ExpiresAt: t.ExpiresAt,
		Used:      t.Used,
		UsedAt:    t.UsedAt,
		CreatedAt: t.CreatedAt,
	}
}

func toProfileDomain(m *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:            m.ID,
		Name:          m.Name,
		Title:         m.Title,
		Email:         m.Email,
		Location:      m.Location,
		Bio:           m.Bio,
		OGTitle:       m.OGTitle,
		OGDescription: m.OGDescription,
		OGImageURL:    m.OGImageURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromProfileDomain(p *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:            p.ID,
		Name:          p.Name,
		Title:         p.Title,
		Email:         p.Email,
		Location:      p.Location,
		Bio:           p.Bio,
		OGTitle:       p.OGTitle,
		OGDescription: p.OGDescription,
		OGImageURL:    p.OGImageURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toExperienceDomain(m *model.ExperienceModel) *entity.Experience {
	return &entity.Experience{
		ID:          m.ID,
		Company:     m.Company,
		Period:      m.Period,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromExperienceDomain(e *entity.Experience) *model.ExperienceModel {
	return &model.ExperienceModel{
		ID:          e.ID,
		Company:     e.Company,
		Period:      e.Period,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toSocialLinkDomain(m *model.SocialLinkModel) *entity.SocialLink {
	return &entity.SocialLink{
		ID:        m.ID,
		Label:     m.Label,
		Href:      m.Href,
		CreatedAt: m.CreatedAt,
	}
}

func fromSocialLinkDomain(l *entity.SocialLink) *model.SocialLinkModel {
	return &model.SocialLinkModel{
		ID:        l.ID,
		Label:     l.Label,
		Href:      l.Href,
		CreatedAt: l.CreatedAt,
	}
}

func toGalleryImageDomain(m *model.GalleryImageModel) *entity.GalleryImage {
	return &entity.GalleryImage{
		ID:        m.ID,
		RowNumber: m.RowNumber,
		Position:  m.Position,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
	}
}

func fromGalleryImageDomain(g *entity.GalleryImage) *model.GalleryImageModel {
	return &model.GalleryImageModel{
		ID:        g.ID,
		RowNumber: g.RowNumber,
		Position:  g.Position,
		ImageURL:  g.ImageURL,
		CreatedAt: g.CreatedAt,
	}
}
