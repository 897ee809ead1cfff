// Package server implements the HTTP surface using Echo framework.
//
// Routes: public intake submission (/apply), admin auth (/admin/login,
// /admin/check, /admin/logout), protected listing (/admin/data), health and
// metrics endpoints. Handlers split by concern: handlers_apply.go,
// handlers_auth.go, handlers_data.go, handlers_health.go.
package server
