// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the version, date and commit injected into notes and
// notesd with -ldflags "-X main.buildVersion=...". The daemon reports it on
// GET /api/version/ unless APP_VERSION overrides the version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
