// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries the version, date and commit injected into the
// server binary with -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// OrDefault returns a copy of a with every empty value replaced by def,
// e.g. "N/A" for binaries built without linker flags.
func (a AppBuildInfo) OrDefault(def string) AppBuildInfo {
	pick := func(s string) string {
		if s == "" {
			return def
		}
		return s
	}
	return NewAppBuildInfo(pick(a.buildVersion), pick(a.buildDate), pick(a.buildCommit))
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }
