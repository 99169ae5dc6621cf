package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configFileName = ".komorebi.json"
	scriptBaseName = "komorebi.ahk"
)

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return home, nil
}

// FilePath returns $HOME/.komorebi.json.
func FilePath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// ScriptPaths returns the two extensions the config watcher accepts for
// the user's startup script, $HOME/komorebi.ahk and $HOME/komorebi.ahk2.
func ScriptPaths() ([]string, error) {
	home, err := homeDir()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(home, scriptBaseName),
		filepath.Join(home, scriptBaseName+"2"),
	}, nil
}

// CommandSocketPath returns $HOME/komorebi.sock.
func CommandSocketPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "komorebi.sock"), nil
}

// StateSocketPath returns $HOME/komorebic.sock.
func StateSocketPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "komorebic.sock"), nil
}

// HwndPersistPath returns $HOME/komorebi.hwnd.json.
func HwndPersistPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "komorebi.hwnd.json"), nil
}

// PidFilePath returns the single-instance lock file path.
func PidFilePath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".komorebi.pid"), nil
}
