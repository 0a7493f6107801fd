package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SeverityProfile fixes the workload units, SLA day threshold and daily
// breach penalty of one complaint severity.
type SeverityProfile struct {
	Workload     int `yaml:"workload"`
	SLADays      int `yaml:"sla_days"`
	DailyPenalty int `yaml:"daily_penalty"`
}

// CapacityTier raises the roster capacity once company funds reach the tier.
type CapacityTier struct {
	MinFunds int64 `yaml:"min_funds"`
	Capacity int   `yaml:"capacity"`
}

// IntRange is a half-open [Min, Max) integer range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
		RateLimit    int           `yaml:"rate_limit" default:"120"` // requests per minute
		RateBurst    int           `yaml:"rate_burst" default:"30"`
	} `yaml:"server"`

	Simulation struct {
		Seed       int64 `yaml:"seed"`        // 0 means time-based
		MarketSize int   `yaml:"market_size"` // candidates per market refresh
		StartYear  int   `yaml:"start_year"`
		StartMoney int64 `yaml:"start_money"`
		StartFans  int64 `yaml:"start_fans"`
	} `yaml:"simulation"`

	Talent struct {
		SalaryBase      map[int]int      `yaml:"salary_base"`       // skill tier -> base salary
		SalaryNoiseMin  int              `yaml:"salary_noise_min"`  // inclusive
		SalaryNoiseMax  int              `yaml:"salary_noise_max"`  // exclusive
		PoolSkillMin    int              `yaml:"pool_skill_min"`    // exclusive-skill lower bound in pool mode
		PoolSkillMax    int              `yaml:"pool_skill_max"`    // inclusive upper bound
		ExperienceRange map[int]IntRange `yaml:"experience_range"`  // skill tier -> years range
		TierBlendWeight float64          `yaml:"tier_blend_weight"` // weight of tier base vs band midpoint
	} `yaml:"talent"`

	Recruitment struct {
		FeeMultiplier    float64         `yaml:"fee_multiplier"`
		MinFee           int             `yaml:"min_fee"`
		MaxFee           int             `yaml:"max_fee"`
		SkillMultipliers map[int]float64 `yaml:"skill_multipliers"`
		BaseCapacity     int             `yaml:"base_capacity"`
		CapacityTiers    []CapacityTier  `yaml:"capacity_tiers"`
	} `yaml:"recruitment"`

	Postings struct {
		MaxApplicantsPerArrival int `yaml:"max_applicants_per_arrival"`
		PassScore               int `yaml:"pass_score"`
	} `yaml:"postings"`

	Support struct {
		Severities         map[string]SeverityProfile `yaml:"severities"`
		MonthlyProbability map[string]float64         `yaml:"monthly_probability"` // business model -> chance
		DailyProbability   map[string]float64         `yaml:"daily_probability"`
		MaxMonthlyPerGame  int                        `yaml:"max_monthly_per_game"`
		BaseDailyProgress  int                        `yaml:"base_daily_progress"`
		SkillMultipliers   map[int]float64            `yaml:"skill_multipliers"`
		SaturationWorkload int                        `yaml:"saturation_workload"`
		RetainCompleted    int                        `yaml:"retain_completed"`
		MaxActive          int                        `yaml:"max_active"`
	} `yaml:"support"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}
	config.setDefaults()

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// setDefaults applies the production default values for every section.
func (c *Config) setDefaults() {
	c.Server.Port = 8080
	c.Server.Host = "0.0.0.0"
	c.Server.ReadTimeout = 30 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.IdleTimeout = 60 * time.Second
	c.Server.RateLimit = 120
	c.Server.RateBurst = 30

	c.Simulation.Seed = 0
	c.Simulation.MarketSize = 20
	c.Simulation.StartYear = 2020
	c.Simulation.StartMoney = 100000
	c.Simulation.StartFans = 1000

	c.Talent.SalaryBase = map[int]int{1: 3000, 2: 4000, 3: 6000, 4: 9000, 5: 15000}
	c.Talent.SalaryNoiseMin = -500
	c.Talent.SalaryNoiseMax = 1000
	c.Talent.PoolSkillMin = 3
	c.Talent.PoolSkillMax = 5
	c.Talent.ExperienceRange = map[int]IntRange{
		1: {Min: 0, Max: 3},
		2: {Min: 1, Max: 5},
		3: {Min: 3, Max: 9},
		4: {Min: 6, Max: 16},
		5: {Min: 10, Max: 26},
	}
	c.Talent.TierBlendWeight = 0.7

	c.Recruitment.FeeMultiplier = 1.5
	c.Recruitment.MinFee = 2000
	c.Recruitment.MaxFee = 30000
	c.Recruitment.SkillMultipliers = map[int]float64{1: 0.8, 2: 1.0, 3: 1.3, 4: 1.8, 5: 2.5}
	c.Recruitment.BaseCapacity = 10
	c.Recruitment.CapacityTiers = []CapacityTier{
		{MinFunds: 20000, Capacity: 12},
		{MinFunds: 50000, Capacity: 15},
		{MinFunds: 100000, Capacity: 20},
	}

	c.Postings.MaxApplicantsPerArrival = 3
	c.Postings.PassScore = 60

	c.Support.Severities = map[string]SeverityProfile{
		"LOW":    {Workload: 80, SLADays: 15, DailyPenalty: 10},
		"MEDIUM": {Workload: 200, SLADays: 12, DailyPenalty: 25},
		"HIGH":   {Workload: 350, SLADays: 8, DailyPenalty: 50},
	}
	c.Support.MonthlyProbability = map[string]float64{
		"single_player": 0.30,
		"online":        0.50,
	}
	c.Support.DailyProbability = map[string]float64{
		"single_player": 0.005,
		"online":        0.01,
	}
	c.Support.MaxMonthlyPerGame = 2
	c.Support.BaseDailyProgress = 60
	c.Support.SkillMultipliers = map[int]float64{1: 1.0, 2: 1.3, 3: 1.7, 4: 2.2, 5: 2.8}
	c.Support.SaturationWorkload = 1000
	c.Support.RetainCompleted = 30
	c.Support.MaxActive = 50

	c.Logging.Level = "info"
	c.Logging.Format = "json"
	c.Logging.Output = "stdout"
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if limit := os.Getenv("RATE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			c.Server.RateLimit = n
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if seed := os.Getenv("SIM_SEED"); seed != "" {
		if s, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Simulation.Seed = s
		}
	}

	if size := os.Getenv("SIM_MARKET_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil && n > 0 {
			c.Simulation.MarketSize = n
		}
	}

	if money := os.Getenv("SIM_START_MONEY"); money != "" {
		if n, err := strconv.ParseInt(money, 10, 64); err == nil {
			c.Simulation.StartMoney = n
		}
	}
}

// SeverityProfileFor returns the profile of a severity, falling back to the
// LOW profile for unknown keys so generation never fails.
func (c *Config) SeverityProfileFor(severity string) SeverityProfile {
	if p, ok := c.Support.Severities[severity]; ok {
		return p
	}
	return c.Support.Severities["LOW"]
}
