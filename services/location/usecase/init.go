package usecase

import (
	"sync"
	"time"

	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/location"
)

// afterFunc arms f to run once after d and returns a function that disarms it
type afterFunc func(d time.Duration, f func()) (stop func() bool)

func realAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// LocationUC implements location.LocationUC
type LocationUC struct {
	locationRepo location.LocationRepo
	locationGW   location.LocationGW
	guardians    location.GuardianDirectory
	source       location.PositionSource
	notifier     location.DeviceNotifier
	links        LinkBuilder
	fixTimeout   time.Duration
	precision    uint
	now          func() time.Time
	afterFunc    afterFunc

	mu       sync.Mutex
	sessions map[string]*session
}

// NewLocationUC creates a new location usecase instance
func NewLocationUC(
	cfg models.LocationConfig,
	locationRepo location.LocationRepo,
	locationGW location.LocationGW,
	guardians location.GuardianDirectory,
	source location.PositionSource,
	notifier location.DeviceNotifier,
) *LocationUC {
	precision := cfg.GeohashPrecision
	if precision == 0 {
		precision = 7
	}
	return &LocationUC{
		locationRepo: locationRepo,
		locationGW:   locationGW,
		guardians:    guardians,
		source:       source,
		notifier:     notifier,
		links:        LinkBuilder{MapsBaseURL: cfg.MapsBaseURL, ShareBaseURL: cfg.ShareBaseURL},
		fixTimeout:   time.Duration(cfg.FixTimeoutSeconds) * time.Second,
		precision:    precision,
		now:          models.Now,
		afterFunc:    realAfterFunc,
		sessions:     make(map[string]*session),
	}
}
