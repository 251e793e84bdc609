package router

import (
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

// Modules implement one or both mount interfaces and get picked up by the
// engine builders through Register.
type APIModule interface{ MountAPI(*gin.RouterGroup) }
type AdminModule interface{ MountAdmin(*gin.RouterGroup) }

// Implementing prioritizer controls mount order (lower mounts first,
// default 100).
type prioritizer interface{ Priority() int }

var (
	mu        sync.RWMutex
	apiMods   []APIModule
	adminMods []AdminModule
)

// Register sorts a module into the API and/or admin lists. Registering the
// same module twice is a no-op, so both engine builders may call it.
func Register(mod any) {
	mu.Lock()
	defer mu.Unlock()
	if m, ok := mod.(APIModule); ok && !containsAPI(m) {
		apiMods = append(apiMods, m)
	}
	if m, ok := mod.(AdminModule); ok && !containsAdmin(m) {
		adminMods = append(adminMods, m)
	}
}

func containsAPI(m APIModule) bool {
	for _, e := range apiMods {
		if e == m {
			return true
		}
	}
	return false
}

func containsAdmin(m AdminModule) bool {
	for _, e := range adminMods {
		if e == m {
			return true
		}
	}
	return false
}

// MountAllAPI mounts every registered API module on the given group.
func MountAllAPI(api *gin.RouterGroup) {
	mu.RLock()
	mods := append([]APIModule(nil), apiMods...)
	mu.RUnlock()

	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(api)
	}
}

// MountAllAdmin mounts every registered admin module on the given group.
func MountAllAdmin(admin *gin.RouterGroup) {
	mu.RLock()
	mods := append([]AdminModule(nil), adminMods...)
	mu.RUnlock()

	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAdmin(admin)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
