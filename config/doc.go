// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Site metadata feeds the document envelopes; serializer defaults seed new
// serializer instances and can be overridden per call site.
package config
