// Package scaffold generates ADK-style Python agent packages. It powers the
// "agentkit create-agent" command, producing a directory with an empty (or
// starter) agent.py and an __init__.py that re-exports the agent module.
package scaffold
