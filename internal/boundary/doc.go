// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

/*
Package boundary defines the wire contract between outer collaborators and
the recommendation engine.

The request body mirrors the recommendation endpoint of the web service this
engine backs:

	{"seed_track_id": "uLK2r3sG4lE", "user_history_ids": ["XoiOOiuH8iI"], "limit": 5}

and the response envelope is:

	{"tracks": [{"id": "...", "title": "...", "artist": "...", "bpm": 105}],
	 "status": "ok", "request_id": "..."}

status is "seed_not_found" when the seed is unknown; tracks is then empty.
Validation failures are reported as {"error": {"code": "VALIDATION_ERROR", ...}}.
*/
package boundary
