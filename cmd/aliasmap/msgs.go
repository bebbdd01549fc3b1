package main

// Short messages (one-liners)
const (
	MsgRootShort = "Alias registry for canonical names"
	MsgRootLong = `aliasmap maintains a registry of alias bindings: alternate names that
resolve, directly or through chains of aliases, to one canonical name.
It loads alias definitions from TOML or YAML files, checks them for
conflicts and circular references, and resolves ${...} placeholders.`

	MsgCheckShort     = "Validate an alias definition file"
	MsgAliasesShort   = "List all aliases of a name"
	MsgCanonicalShort = "Print the canonical name an alias resolves to"
	MsgResolveShort   = "Resolve placeholders and print the rewritten alias map"
	MsgVersionShort   = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput  = "Write the resolved map to a file instead of stdout"

	// Status messages
	MsgCheckOKFormat   = "%s: %d aliases, %d placeholders\n"
	MsgNoAliases       = "No aliases registered for this name."
	MsgResolvedHeader  = "Resolved aliases:"
	MsgWroteFileFormat = "Wrote resolved aliases to %s\n"
)
