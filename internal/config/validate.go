package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePipeline(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.AlignmentMinShared < 1 {
		return errors.New("pipeline.alignment_min_shared must be at least 1")
	}
	if c.Pipeline.CloseVoteMargin < 0 {
		return errors.New("pipeline.close_vote_margin must not be negative")
	}
	if c.Pipeline.MaxTopics < 1 {
		return errors.New("pipeline.max_topics must be at least 1")
	}
	if c.Pipeline.FulltextClassifyBytes < 0 {
		return errors.New("pipeline.fulltext_classify_bytes must not be negative")
	}
	if c.Pipeline.PreviewBytes < 0 {
		return errors.New("pipeline.preview_bytes must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
