// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

const (
	buildDateHeader   = "X-Build-Date"
	buildCommitHeader = "X-Build-Commit"
)

// getServerVersion answers with the version as plain text. Build metadata,
// when known, goes into response headers.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	if build.BuildDate() != "" {
		w.Header().Set(buildDateHeader, build.BuildDate())
	}
	if build.BuildCommit() != "" {
		w.Header().Set(buildCommitHeader, build.BuildCommit())
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
