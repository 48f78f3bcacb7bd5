// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo holds the version, date and commit stamped into the server or
// client binary with -ldflags. Empty strings mean the value was not stamped.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// BuildVersion is used by /api/version when APP_VERSION is not configured.
func (a AppBuildInfo) BuildVersion() string { return a.version }

// BuildDate is sent in the X-Build-Date header.
func (a AppBuildInfo) BuildDate() string { return a.date }

// BuildCommit is sent in the X-Build-Commit header.
func (a AppBuildInfo) BuildCommit() string { return a.commit }
