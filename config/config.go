package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Navigation configuration for sessions and the waypoint tracker
	Navigation *NavigationConfig `json:"navigation" yaml:"navigation"`

	// Clustering configuration for High Volume Area detection
	Clustering *ClusteringConfig `json:"clustering" yaml:"clustering"`

	// Directions configuration for the leg directions provider
	Directions *DirectionsConfig `json:"directions" yaml:"directions"`

	// Sightings configuration for the sighting backend
	Sightings *SightingsConfig `json:"sightings" yaml:"sightings"`

	// PubSub configuration for navigation event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// NavigationConfig defines navigation session behaviour
type NavigationConfig struct {
	// Distance in meters under which a waypoint counts as reached
	ArrivalThresholdMeters float64 `json:"arrivalThresholdMeters" yaml:"arrivalThresholdMeters"`

	// Wait for an explicit confirmation before moving on to the next waypoint
	ConfirmBeforeAdvance bool `json:"confirmBeforeAdvance" yaml:"confirmBeforeAdvance"`

	// Default spacing of breadcrumbs along a leg polyline
	BreadcrumbIntervalMeters float64 `json:"breadcrumbIntervalMeters" yaml:"breadcrumbIntervalMeters"`

	// Sessions without any activity for this long are ended
	SessionIdleTimeout time.Duration `json:"sessionIdleTimeout" yaml:"sessionIdleTimeout"`

	// Upper bound of concurrent directions requests per route build
	MaxConcurrentLegRequests int `json:"maxConcurrentLegRequests" yaml:"maxConcurrentLegRequests"`

	// Number of navigation events kept per session
	EventHistorySize int `json:"eventHistorySize" yaml:"eventHistorySize"`
}

// ClusteringConfig defines hotspot clustering parameters
type ClusteringConfig struct {
	// Neighbourhood radius in miles (planar approximation)
	RadiusMiles float64 `json:"radiusMiles" yaml:"radiusMiles"`

	// Minimum number of sightings forming a hotspot
	MinPoints int `json:"minPoints" yaml:"minPoints"`
}

// DirectionsConfig defines the directions provider used for route legs
type DirectionsConfig struct {
	// Provider type: "google", "pmtiles" or "straight"
	Provider string `json:"provider" yaml:"provider"`

	// Walking speed in km/h used when a provider has to estimate durations
	WalkingSpeedKmh float64 `json:"walkingSpeedKmh" yaml:"walkingSpeedKmh"`

	Google  *GoogleDirectionsConfig `json:"google" yaml:"google"`
	PMTiles *PMTilesConfig          `json:"pmtiles" yaml:"pmtiles"`
	Cache   *DirectionsCacheConfig  `json:"cache" yaml:"cache"`
}

// GoogleDirectionsConfig defines the Google Routes API client
type GoogleDirectionsConfig struct {
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PMTilesConfig defines PMTiles offline walking directions
type PMTilesConfig struct {
	// PMTiles source URL (local file path, HTTP URL, or GCS URL)
	Source string `json:"source" yaml:"source"`

	// Road layer name in the MVT tiles
	RoadLayer string `json:"roadLayer" yaml:"roadLayer"`

	// Zoom level for tile queries
	ZoomLevel int `json:"zoomLevel" yaml:"zoomLevel"`

	// Maximum distance in meters for snapping a coordinate onto the path network
	MaxSnapDistanceMeters float64 `json:"maxSnapDistanceMeters" yaml:"maxSnapDistanceMeters"`

	// Maximum number of tiles loaded for a single leg
	MaxTiles int `json:"maxTiles" yaml:"maxTiles"`
}

// DirectionsCacheConfig defines the valkey-backed directions cache
type DirectionsCacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Address string        `json:"address" yaml:"address"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// SightingsConfig defines the sighting fetch service client
type SightingsConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "nats"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// NATS server URL and subject prefix (for nats provider)
	NatsURL string `json:"natsUrl" yaml:"natsUrl"`
	Subject string `json:"subject" yaml:"subject"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DIRECTIONS_GOOGLE_APIKEY -> directions.google.apiKey
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills in the optional sections so consumers never see nil.
func (c *Config) applyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.MaxRequestBodySize == "" {
		c.HTTP.MaxRequestBodySize = "1M"
	}
	if c.Navigation == nil {
		c.Navigation = &NavigationConfig{}
	}
	if c.Clustering == nil {
		c.Clustering = &ClusteringConfig{}
	}
	if c.Directions == nil {
		c.Directions = &DirectionsConfig{}
	}
	if c.Sightings == nil {
		c.Sightings = &SightingsConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
