// Package handler implements the HTTP request dispatch for the palindrome
// service: the form page, the check endpoint, the not-found page, the
// method guard, and the top-level recovery boundary.
package handler
