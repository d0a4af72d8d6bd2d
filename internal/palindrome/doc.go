// Package palindrome implements the normalization and comparison routine
// behind the check endpoint. Both functions are pure and safe for use
// from any number of concurrent requests.
package palindrome
