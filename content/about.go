package content

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
)

const profileImageSize = 400

type socialPlatform struct {
	name string
	icon string
}

var socialPlatforms = map[string]socialPlatform{
	"linkedin":  {name: "LinkedIn", icon: "linkedin"},
	"github":    {name: "GitHub", icon: "github"},
	"twitter":   {name: "Twitter/X", icon: "twitter"},
	"instagram": {name: "Instagram", icon: "instagram"},
	"website":   {name: "Website", icon: "external-link"},
}

// SocialLinkInfo returns the display name and icon for a social link.
// Unknown platforms use the link's own label, or "Link" without one.
func SocialLinkInfo(link models.SocialLink) (name, icon string) {
	if p, ok := socialPlatforms[link.Platform]; ok {
		return p.name, p.icon
	}
	if link.Label != "" {
		return link.Label, "external-link"
	}
	return "Link", "external-link"
}

func (s *Service) aboutDisplay(ctx context.Context, a models.About) (models.AboutDisplay, bool) {
	if err := s.validate.Struct(a); err != nil {
		s.logger.Warn().Err(err).Str("documentID", a.ID).Msg("dropping invalid about document")
		return models.AboutDisplay{}, false
	}

	var profileURL string
	if !a.ProfileImage.IsZero() {
		resolved, err := s.images.ImageURL(ctx, a.ProfileImage, profileImageSize, profileImageSize)
		if err != nil {
			s.logger.Warn().Err(err).Str("documentID", a.ID).Msg("could not resolve profile image")
		} else {
			profileURL = resolved
		}
	}

	links := make([]models.SocialLinkDisplay, 0, len(a.SocialLinks))
	for _, link := range a.SocialLinks {
		if err := s.validate.Struct(link); err != nil {
			s.logger.Warn().Err(err).Str("documentID", a.ID).Msg("dropping invalid social link")
			continue
		}
		name, icon := SocialLinkInfo(link)
		links = append(links, models.SocialLinkDisplay{SocialLink: link, Name: name, Icon: icon})
	}

	skills := a.Skills
	if skills == nil {
		skills = []string{}
	}
	description := a.Description
	if description == nil {
		description = []models.Block{}
	}

	return models.AboutDisplay{
		ID:              a.ID,
		Title:           a.Title,
		CurrentRole:     a.CurrentRole,
		Description:     description,
		ProfileImageURL: profileURL,
		Skills:          skills,
		Experience:      a.Experience,
		Location:        a.Location,
		Email:           a.Email,
		SocialLinks:     links,
		IsActive:        a.IsActive,
		UpdatedAt:       optionalTimestamp(a.UpdatedAt),
	}, true
}
