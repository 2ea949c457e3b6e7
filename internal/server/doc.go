// Package server exposes the taskdeck HTTP API.
//
// # Endpoints
//
//	POST   /auth/register   create an account, returns a bearer token (201)
//	POST   /auth/login      authenticate, returns a bearer token (200)
//	POST   /tasks           create a task (201)
//	GET    /tasks           list the caller's tasks (200)
//	GET    /tasks/{id}      fetch one task (200)
//	PUT    /tasks/{id}      partial update (200)
//	DELETE /tasks/{id}      delete (204)
//	GET    /health          liveness (200)
//
// Task endpoints require Authorization: Bearer <token>. The auth middleware
// itself never rejects a request; protected handlers return 401 when no
// identity reached them. A task that exists under another account responds
// 404, exactly like a task that does not exist.
//
// # Errors
//
// Failures share one JSON shape:
//
//	{timestamp, status, error, message, path, details?}
//
// Statuses are derived from sentinel errors in an explicit switch, never from
// error message text.
package server
