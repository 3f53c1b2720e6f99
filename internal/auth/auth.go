package auth

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const serviceName = "bunkai"

type entry struct {
	account string
	envVar  string
}

var services = map[string]entry{
	"gemini": {account: "gemini-api-key", envVar: "GEMINI_API_KEY"},
	"openai": {account: "openai-api-key", envVar: "OPENAI_API_KEY"},
}

func lookup(service string) entry {
	if e, ok := services[service]; ok {
		return e
	}
	return services["gemini"]
}

// GetKey retrieves the API key for a specific service (gemini or openai).
// If allowEnv is false, environment variables are ignored.
func GetKey(service string, allowEnv bool) (string, string) {
	e := lookup(service)

	key, err := keyring.Get(serviceName, e.account)
	if err == nil && key != "" {
		return strings.TrimSpace(key), "Keychain"
	}

	if allowEnv {
		if key := os.Getenv(e.envVar); key != "" {
			return strings.TrimSpace(key), "Environment Variable"
		}
	}

	return "", ""
}

// SaveKey saves the key for a specific service to the OS Keychain.
func SaveKey(service, key string) error {
	return keyring.Set(serviceName, lookup(service).account, strings.TrimSpace(key))
}

// DeleteKey removes the key for a specific service from the OS Keychain.
func DeleteKey(service string) error {
	return keyring.Delete(serviceName, lookup(service).account)
}

// GetStatus returns whether a key exists for a specific service in the keychain.
func GetStatus(service string) bool {
	key, err := keyring.Get(serviceName, lookup(service).account)
	return err == nil && key != ""
}

// GetEnvKey retrieves the key from environment variables only.
func GetEnvKey(service string) (string, bool) {
	key := strings.TrimSpace(os.Getenv(lookup(service).envVar))
	if key == "" {
		return "", false
	}
	return key, true
}

// PromptForAPIKey securely prompts the user for their API key.
func PromptForAPIKey(prompt string) (string, error) {
	fmt.Print(prompt)
	byteKey, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println() // newline after hidden input
	return strings.TrimSpace(string(byteKey)), nil
}
