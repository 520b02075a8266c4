// Package testutils provides testing utilities shared by the package tests.
//
// It contains helpers for:
//  1. Capturing structured log output (TestSlogHandler)
//  2. Starting httptest servers with automatic cleanup
//  3. Executing JSON requests and decoding responses
//  4. Asserting error responses
//
// Typical use against a handler:
//
//	server := testutils.CreateTestServer(t, router)
//	resp := testutils.DoJSONRequest(t, server, http.MethodPost, "/api/tasks",
//	    map[string]string{"description": "Buy milk"})
//	testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid")
package testutils
