package usecase

import (
	"strconv"
	"strings"

	"github.com/piresc/shesafe/internal/pkg/models"
)

// LinkBuilder derives the links handed to guardians
type LinkBuilder struct {
	MapsBaseURL  string
	ShareBaseURL string
}

// MapsLink points a maps app at the position
func (b LinkBuilder) MapsLink(pos models.Position) string {
	return b.MapsBaseURL + "?q=" + formatCoordinate(pos.Latitude) + "," + formatCoordinate(pos.Longitude)
}

// TokenLink is the public tracking page of a share token
func (b LinkBuilder) TokenLink(token string) string {
	return strings.TrimRight(b.ShareBaseURL, "/") + "/s/" + token
}

// ShareableLink is the maps link when guardians are selected and the
// token link for link-only sessions
func (b LinkBuilder) ShareableLink(token string, guardianIDs []string, pos *models.Position) string {
	if len(guardianIDs) == 0 {
		return b.TokenLink(token)
	}
	if pos == nil {
		return ""
	}
	return b.MapsLink(*pos)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
