package taskfile

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	yamlv3 "gopkg.in/yaml.v3"
)

// Quarantine moves a corrupt task file aside so the next write starts
// from a clean slate, keeping the evidence.
func Quarantine(workDir, filePath string) error {
	quarantineDir := filepath.Join(workDir, "quarantine")
	if err := os.MkdirAll(quarantineDir, 0755); err != nil {
		return fmt.Errorf("create quarantine dir: %w", err)
	}

	baseName := filepath.Base(filePath)
	timestamp := time.Now().Format("20060102T150405")
	quarantinePath := filepath.Join(quarantineDir, fmt.Sprintf("%s.%s.corrupt", baseName, timestamp))

	if err := os.Rename(filePath, quarantinePath); err != nil {
		return fmt.Errorf("move to quarantine: %w", err)
	}

	log.Printf("quarantined corrupted task file: %s → %s", filePath, quarantinePath)
	return nil
}

// RestoreFromBackup rewrites the task file from the .bak sibling that
// AtomicWrite maintains.
func RestoreFromBackup(filePath string) error {
	bakPath := filePath + ".bak"
	if _, err := os.Stat(bakPath); os.IsNotExist(err) {
		return fmt.Errorf("no backup file: %s", bakPath)
	}

	content, err := os.ReadFile(bakPath)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	if err := validateYAML(content); err != nil {
		return fmt.Errorf("backup YAML is also corrupted: %w", err)
	}

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("restore from backup: %w", err)
	}

	log.Printf("restored task file from backup: %s → %s", bakPath, filePath)
	return nil
}

// GenerateSkeleton writes an empty task-set document.
func GenerateSkeleton(filePath string) error {
	skeleton := map[string]any{
		"schema_version": CurrentSchemaVersion,
		"file_type":      FileTypeTaskSet,
		"tasks":          []any{},
	}
	content, err := yamlv3.Marshal(skeleton)
	if err != nil {
		return fmt.Errorf("marshal skeleton: %w", err)
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("write skeleton: %w", err)
	}

	log.Printf("generated task file skeleton: %s", filePath)
	return nil
}

// RecoverCorruptedFile quarantines the broken file, then restores from
// backup if possible and falls back to an empty skeleton otherwise.
func RecoverCorruptedFile(workDir, filePath string) error {
	if err := Quarantine(workDir, filePath); err != nil {
		return fmt.Errorf("quarantine failed: %w", err)
	}

	if err := RestoreFromBackup(filePath); err != nil {
		log.Printf("backup restore failed for %s: %v — falling back to skeleton generation", filePath, err)
	} else {
		return nil
	}

	if err := GenerateSkeleton(filePath); err != nil {
		return fmt.Errorf("skeleton generation failed: %w", err)
	}

	return nil
}
