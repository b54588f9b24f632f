// Package workspace locates and inspects scaffolded agent packages. An agent
// is any direct subdirectory of the agents root that carries agent.py and
// __init__.py; the root resolves from the AGENTKIT_AGENTS_ROOT environment
// variable, then the agents_root config key, then the working directory.
package workspace
