package platform

import (
	"net/url"
	"strings"
)

// platformsByHost maps hostnames to their platforms
var platformsByHost = map[string]Platform{}

// platformsByName maps route identifiers to their platforms
var platformsByName = map[string]Platform{}

// Register adds a platform for the given hostnames
func Register(p Platform, hosts ...string) {
	platformsByName[p.Name()] = p
	for _, host := range hosts {
		platformsByHost[host] = p
	}
}

// Match finds the platform for a URL using O(1) hostname lookup
func Match(rawURL string) Platform {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}

	host := strings.ToLower(u.Hostname())

	// Try exact match
	if p, ok := platformsByHost[host]; ok {
		if p.Match(u) {
			return p
		}
	}

	// Try without www. prefix
	if strings.HasPrefix(host, "www.") {
		if p, ok := platformsByHost[host[4:]]; ok {
			if p.Match(u) {
				return p
			}
		}
	}

	return nil
}

// ByName returns the platform registered under the given identifier
func ByName(name string) Platform {
	return platformsByName[strings.ToLower(name)]
}

// List returns all unique registered platforms
func List() []Platform {
	seen := make(map[string]bool)
	var result []Platform
	for _, p := range platformsByName {
		if !seen[p.Name()] {
			seen[p.Name()] = true
			result = append(result, p)
		}
	}
	return result
}
