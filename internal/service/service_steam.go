package service

import (
	"github.com/MKhiriev/cs2-video-editor/internal/steam"
	"github.com/MKhiriev/cs2-video-editor/models"
)

type steamScanService struct {
	scanner *steam.Scanner
}

// NewSteamScanService wraps a [steam.Scanner] as a [SteamScanService].
// A nil scanner yields a service that always reports no users, which is how
// the scan is disabled by config.
func NewSteamScanService(scanner *steam.Scanner) SteamScanService {
	return &steamScanService{scanner: scanner}
}

func (s *steamScanService) Users() []models.SteamUser {
	if s.scanner == nil {
		return nil
	}
	return s.scanner.Scan()
}
