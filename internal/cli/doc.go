// Package cli defines the agentkit command tree.
package cli
