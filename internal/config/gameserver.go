package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Combat holds the tuning constants of the combat pipeline.
type Combat struct {
	ArmorDivisor          float64 `yaml:"armor_divisor" env:"ARMOR_DIVISOR"`
	DefaultCritFrequency  float64 `yaml:"default_crit_frequency" env:"CRIT_FREQUENCY"`
	DefaultCritMultiplier float64 `yaml:"default_crit_multiplier" env:"CRIT_MULTIPLIER"`
	UnarmedDamageMin      float64 `yaml:"unarmed_damage_min" env:"UNARMED_DAMAGE_MIN"`
	UnarmedDamageMax      float64 `yaml:"unarmed_damage_max" env:"UNARMED_DAMAGE_MAX"`
	AttributeFactor       float64 `yaml:"attribute_factor" env:"ATTRIBUTE_FACTOR"`
	BowAttributeFactor    float64 `yaml:"bow_attribute_factor" env:"BOW_ATTRIBUTE_FACTOR"`

	// Evade stamina waiver: chance grows linearly with endurance up to the cap.
	EnduranceStaminaCap uint32  `yaml:"endurance_stamina_cap" env:"ENDURANCE_STAMINA_CAP"`
	EvadeStaminaWaiver  float64 `yaml:"evade_stamina_waiver" env:"EVADE_STAMINA_WAIVER"`

	CreatureWoundThreshold float64 `yaml:"creature_wound_threshold" env:"CREATURE_WOUND_THRESHOLD"`
	PlayerWoundThreshold   float64 `yaml:"player_wound_threshold" env:"PLAYER_WOUND_THRESHOLD"`
	HitSoundVolume         float64 `yaml:"hit_sound_volume" env:"HIT_SOUND_VOLUME"`
}

// DefaultCombat returns the stock tuning.
func DefaultCombat() Combat {
	return Combat{
		ArmorDivisor:           200,
		DefaultCritFrequency:   0.1,
		DefaultCritMultiplier:  1.0,
		UnarmedDamageMin:       1,
		UnarmedDamageMax:       5,
		AttributeFactor:        0.011,
		BowAttributeFactor:     0.008,
		EnduranceStaminaCap:    400,
		EvadeStaminaWaiver:     0.75,
		CreatureWoundThreshold: 0.25,
		PlayerWoundThreshold:   0.10,
		HitSoundVolume:         0.5,
	}
}

// World holds landblock scheduling settings.
type World struct {
	TickInterval       time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	LandblockQueueSize int           `yaml:"landblock_queue_size" env:"LANDBLOCK_QUEUE_SIZE"`
	Seed               uint64        `yaml:"seed" env:"SEED"` // 0 = time based
	LifestoneDuration  time.Duration `yaml:"lifestone_duration" env:"LIFESTONE_DURATION"`
	TreasureCacheSize  int           `yaml:"treasure_cache_size" env:"TREASURE_CACHE_SIZE"`
}

// Events holds outbound event queue settings.
type Events struct {
	QueueSize int `yaml:"queue_size" env:"QUEUE_SIZE"`
}

// Telemetry holds OTLP tracing settings. Tracing is off unless Enabled and
// Endpoint are both set.
type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"ENABLED"`
	Endpoint    string `yaml:"endpoint" env:"ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
}

// GameServer holds all configuration for the game server.
type GameServer struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// DataDir holds YAML item templates and treasure tables used when the
	// database is disabled.
	DataDir     string `yaml:"data_dir" env:"DATA_DIR"`
	UseDatabase bool   `yaml:"use_database" env:"USE_DATABASE"`

	Database  DatabaseConfig `yaml:"database" envPrefix:"DB_"`
	Combat    Combat         `yaml:"combat" envPrefix:"COMBAT_"`
	World     World          `yaml:"world" envPrefix:"WORLD_"`
	Events    Events         `yaml:"events" envPrefix:"EVENTS_"`
	Telemetry Telemetry      `yaml:"telemetry" envPrefix:"OTEL_"`
}

// DefaultGameServer returns GameServer config with sensible defaults.
func DefaultGameServer() GameServer {
	return GameServer{
		LogLevel:    "info",
		DataDir:     "data",
		UseDatabase: false,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "acego",
			Password: "acego",
			DBName:   "acego",
			SSLMode:  "disable",
		},
		Combat: DefaultCombat(),
		World: World{
			TickInterval:       100 * time.Millisecond,
			LandblockQueueSize: 1024,
			LifestoneDuration:  60 * time.Second,
			TreasureCacheSize:  256,
		},
		Events: Events{QueueSize: 4096},
		Telemetry: Telemetry{
			ServiceName: "acego-gameserver",
		},
	}
}

// LoadGameServer loads game server config from a YAML file, then applies
// environment overrides. If the file doesn't exist, defaults are used.
func LoadGameServer(path string) (GameServer, error) {
	cfg := DefaultGameServer()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
