package config

import (
	"hash/fnv"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// FeatureFlags manages feature toggles and gradual rollouts.
// Supports percentage rollout, per-user overrides, and time-based activation.
//
// The assessment engine itself is never behind a flag; flags cover the
// surrounding surfaces (caching, events, coaching extras) so a bad rollout
// can be reverted without touching classification behavior.
type FeatureFlags struct {
	mu sync.RWMutex

	// Core features
	features map[string]*Feature

	// Override rules (for testing/debugging)
	userOverrides map[string]map[string]bool // userID -> feature -> enabled
}

// Feature represents a single feature flag.
type Feature struct {
	Name        string
	Description string
	Enabled     bool

	// Rollout percentage (0-100)
	// Users are assigned based on hash of their ID
	RolloutPercent int

	// Time-based activation
	EnabledFrom  *time.Time
	EnabledUntil *time.Time

	// A/B test variant (for experiments)
	Variants []string
}

// FeatureContext provides context for feature flag evaluation.
type FeatureContext struct {
	UserID  string // Platform user ID
	IsAdmin bool   // Is admin user
}

// Predefined feature flag names.
const (
	// === Engine Surfaces ===
	FeatureEngineResultCache   = "engine.result_cache"   // Redis decorator over the result store
	FeatureEngineAsyncEvents   = "engine.async_events"   // Deliver events on worker goroutines
	FeatureEngineRedisEvents   = "engine.redis_events"   // Broadcast events over Redis pub/sub
	FeatureEngineMasterKey     = "engine.master_key"     // Allow master-key authentication
	FeatureEngineProfileByID   = "engine.profile_by_id"  // Coaches reading member profiles
	FeatureEngineResultHistory = "engine.result_history" // Expose prior results, not just latest

	// === Coaching Features ===
	FeatureCoachingComplement = "coaching.complement" // Show complementary subtype
	FeatureCoachingLoopCopy   = "coaching.loop_copy"  // Operating loop descriptions
	FeatureCoachingRiskCopy   = "coaching.risk_copy"  // Risk sections in profiles

	// === Experimental Features ===
	FeatureExperimentalStagedRuns = "experimental.staged_runs" // Stage-by-stage server-side runs
	FeatureExperimentalAnalytics  = "experimental.analytics"   // Subtype distribution analytics
)

// LoadFeatureFlags loads feature flags from environment variables.
func LoadFeatureFlags() *FeatureFlags {
	ff := &FeatureFlags{
		features:      make(map[string]*Feature),
		userOverrides: make(map[string]map[string]bool),
	}

	// Initialize all features with defaults
	ff.initializeDefaults()

	// Load overrides from environment
	ff.loadFromEnvironment()

	return ff
}

// initializeDefaults sets up all features with default values.
func (ff *FeatureFlags) initializeDefaults() {
	// Engine surfaces - mostly enabled by default
	ff.features[FeatureEngineResultCache] = &Feature{
		Name:           FeatureEngineResultCache,
		Description:    "Cache latest results and cooldown markers in Redis",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureEngineAsyncEvents] = &Feature{
		Name:           FeatureEngineAsyncEvents,
		Description:    "Dispatch domain events on worker goroutines",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureEngineRedisEvents] = &Feature{
		Name:           FeatureEngineRedisEvents,
		Description:    "Broadcast domain events over Redis pub/sub",
		Enabled:        false, // Single-instance deployments don't need it
		RolloutPercent: 0,
	}

	ff.features[FeatureEngineMasterKey] = &Feature{
		Name:           FeatureEngineMasterKey,
		Description:    "Accept master-key tokens for demos and review",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureEngineProfileByID] = &Feature{
		Name:           FeatureEngineProfileByID,
		Description:    "Let coaches read member profiles by ID",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureEngineResultHistory] = &Feature{
		Name:           FeatureEngineResultHistory,
		Description:    "Expose prior results in the API",
		Enabled:        false, // Phase 2
		RolloutPercent: 0,
	}

	// Coaching features
	ff.features[FeatureCoachingComplement] = &Feature{
		Name:           FeatureCoachingComplement,
		Description:    "Show the complementary subtype in profiles",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureCoachingLoopCopy] = &Feature{
		Name:           FeatureCoachingLoopCopy,
		Description:    "Include operating loop descriptions",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureCoachingRiskCopy] = &Feature{
		Name:           FeatureCoachingRiskCopy,
		Description:    "Include risk sections in profile copy",
		Enabled:        true,
		RolloutPercent: 50, // A/B test against edge-only copy
	}

	// Experimental features - disabled by default
	ff.features[FeatureExperimentalStagedRuns] = &Feature{
		Name:           FeatureExperimentalStagedRuns,
		Description:    "Server-side stage-by-stage assessment runs",
		Enabled:        false,
		RolloutPercent: 0,
	}

	ff.features[FeatureExperimentalAnalytics] = &Feature{
		Name:           FeatureExperimentalAnalytics,
		Description:    "Subtype distribution analytics",
		Enabled:        false,
		RolloutPercent: 0,
	}
}

// loadFromEnvironment loads feature flag overrides from env vars.
// Format: FEATURE_<NAME>=true|false|<percent>
// Example: FEATURE_ENGINE_RESULT_CACHE=true
// Example: FEATURE_COACHING_RISK_COPY=50 (50% rollout)
func (ff *FeatureFlags) loadFromEnvironment() {
	for name, feature := range ff.features {
		envKey := featureNameToEnvKey(name)
		if val := os.Getenv(envKey); val != "" {
			// Try parsing as boolean
			if b, err := strconv.ParseBool(val); err == nil {
				feature.Enabled = b
				if b {
					feature.RolloutPercent = 100
				} else {
					feature.RolloutPercent = 0
				}
				continue
			}

			// Try parsing as percentage
			if p, err := strconv.Atoi(val); err == nil && p >= 0 && p <= 100 {
				feature.Enabled = p > 0
				feature.RolloutPercent = p
			}
		}
	}
}

// featureNameToEnvKey converts feature name to environment variable key.
// "engine.result_cache" -> "FEATURE_ENGINE_RESULT_CACHE"
func featureNameToEnvKey(name string) string {
	key := strings.ToUpper(name)
	key = strings.ReplaceAll(key, ".", "_")
	return "FEATURE_" + key
}

// IsEnabled checks if a feature is enabled for the given context.
func (ff *FeatureFlags) IsEnabled(featureName string, ctx *FeatureContext) bool {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	// Check user overrides first
	if ctx != nil && ctx.UserID != "" {
		if userOverrides, ok := ff.userOverrides[ctx.UserID]; ok {
			if enabled, ok := userOverrides[featureName]; ok {
				return enabled
			}
		}
	}

	feature, ok := ff.features[featureName]
	if !ok {
		return false
	}

	// Admin users get all features
	if ctx != nil && ctx.IsAdmin {
		return true
	}

	// Check if feature is enabled at all
	if !feature.Enabled {
		return false
	}

	// Check time-based activation
	now := time.Now()
	if feature.EnabledFrom != nil && now.Before(*feature.EnabledFrom) {
		return false
	}
	if feature.EnabledUntil != nil && now.After(*feature.EnabledUntil) {
		return false
	}

	// Check rollout percentage
	if feature.RolloutPercent < 100 && ctx != nil && ctx.UserID != "" {
		return ff.isInRollout(ctx.UserID, featureName, feature.RolloutPercent)
	}

	return feature.RolloutPercent > 0
}

// isInRollout determines if a user is in the rollout percentage.
// Uses consistent hashing so users stay in their bucket.
func (ff *FeatureFlags) isInRollout(userID string, featureName string, percent int) bool {
	// Create a consistent hash for this user+feature combination
	h := fnv.New32a()
	h.Write([]byte(featureName))
	h.Write([]byte(userID))
	hash := h.Sum32()

	// Map to 0-99 range
	bucket := int(hash % 100)

	return bucket < percent
}

// GetVariant returns the A/B test variant for a user.
// Returns empty string if no variants defined or feature disabled.
func (ff *FeatureFlags) GetVariant(featureName string, ctx *FeatureContext) string {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	feature, ok := ff.features[featureName]
	if !ok || !ff.IsEnabled(featureName, ctx) {
		return ""
	}

	if len(feature.Variants) == 0 {
		return ""
	}

	// Use consistent hashing to assign variant
	h := fnv.New32a()
	h.Write([]byte(featureName + "_variant"))
	h.Write([]byte(ctx.UserID))
	hash := h.Sum32()

	variantIndex := int(hash % uint32(len(feature.Variants)))
	return feature.Variants[variantIndex]
}

// SetUserOverride sets a feature override for a specific user.
// Useful for testing and debugging.
func (ff *FeatureFlags) SetUserOverride(userID string, featureName string, enabled bool) {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	if _, ok := ff.userOverrides[userID]; !ok {
		ff.userOverrides[userID] = make(map[string]bool)
	}
	ff.userOverrides[userID][featureName] = enabled
}

// ClearUserOverrides removes all overrides for a user.
func (ff *FeatureFlags) ClearUserOverrides(userID string) {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	delete(ff.userOverrides, userID)
}

// SetRolloutPercent updates the rollout percentage for a feature.
// Thread-safe for live updates.
func (ff *FeatureFlags) SetRolloutPercent(featureName string, percent int) error {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	feature, ok := ff.features[featureName]
	if !ok {
		return ErrFeatureNotFound
	}

	if percent < 0 || percent > 100 {
		return ErrInvalidRolloutPercent
	}

	feature.RolloutPercent = percent
	feature.Enabled = percent > 0

	return nil
}

// EnableFeature enables a feature at 100% rollout.
func (ff *FeatureFlags) EnableFeature(featureName string) error {
	return ff.SetRolloutPercent(featureName, 100)
}

// DisableFeature disables a feature completely.
func (ff *FeatureFlags) DisableFeature(featureName string) error {
	return ff.SetRolloutPercent(featureName, 0)
}

// GetAllFeatures returns a copy of all feature configurations.
func (ff *FeatureFlags) GetAllFeatures() map[string]*Feature {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	result := make(map[string]*Feature, len(ff.features))
	for k, v := range ff.features {
		// Return a copy
		featureCopy := *v
		result[k] = &featureCopy
	}
	return result
}

// --- Convenience methods for common checks ---

// CachingEnabled checks if the result cache decorator should be wired in.
func (ff *FeatureFlags) CachingEnabled() bool {
	return ff.IsEnabled(FeatureEngineResultCache, nil)
}

// RedisEventsEnabled checks if events should go over Redis pub/sub.
func (ff *FeatureFlags) RedisEventsEnabled() bool {
	return ff.IsEnabled(FeatureEngineRedisEvents, nil)
}

// AsyncEventsEnabled checks if event handlers run on worker goroutines.
func (ff *FeatureFlags) AsyncEventsEnabled() bool {
	return ff.IsEnabled(FeatureEngineAsyncEvents, nil)
}

// MasterKeyEnabled checks if master-key authentication is accepted.
func (ff *FeatureFlags) MasterKeyEnabled() bool {
	return ff.IsEnabled(FeatureEngineMasterKey, nil)
}

// ResultHistoryEnabled checks if the history endpoint should be wired in.
func (ff *FeatureFlags) ResultHistoryEnabled() bool {
	return ff.IsEnabled(FeatureEngineResultHistory, nil)
}

// --- Errors ---

var (
	ErrFeatureNotFound       = &FeatureFlagError{Message: "feature not found"}
	ErrInvalidRolloutPercent = &FeatureFlagError{Message: "rollout percent must be 0-100"}
)

// FeatureFlagError represents a feature flag error.
type FeatureFlagError struct {
	Message string
}

func (e *FeatureFlagError) Error() string {
	return e.Message
}
