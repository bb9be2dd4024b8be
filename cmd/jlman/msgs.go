package jlman

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Julia reference pages in your terminal"
	MsgRootLong  = `jlman prints reference documentation for Julia's built-in types and
standard library: long-form explanations per topic, curated listings of
the functions, macros, types and operators that apply to each one, and
the abstract type taxonomy.`

	MsgManShort = "Show the reference page for a topic"
	MsgManLong  = `Man prints the long-form documentation for a topic. Topics are matched
case-insensitively by prefix, so "int", "Integer" and "INTEGER128" all
reach the integers page. Unrecognized topics print nothing.`

	MsgFunShort = "List the operations that apply to a topic"
	MsgFunLong  = `Fun prints the curated listing of functions, macros, types and
operators for a topic, grouped by purpose. Pass --extended to include
standard-library operations alongside the core set.`

	MsgTopicsShort = "List every documentation topic"
	MsgTopicsLong  = "List every documentation topic together with the spellings that reach it."

	MsgTreeShort = "Print the abstract type taxonomy"
	MsgTreeLong  = `Tree prints the abstract type taxonomy as an indented tree. With an
argument, only the subtree rooted at that type is printed.`

	MsgExportShort = "Write the manual catalog as XML"
	MsgExportLong  = "Export writes a machine-readable XML catalog of every topic, its aliases and its operation listings."

	MsgConfigShort     = "Manage presentation settings"
	MsgConfigShowShort = "Print the effective configuration as TOML"

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagExtended = "Include standard-library operations"
	MsgFlagPlain    = "Force plain output without styling"
	MsgFlagWidth    = "Word-wrap width for rendered pages (0 = auto)"
	MsgFlagOutput   = "Write to file instead of stdout"

	// Command examples
	MsgManExample = `  jlman man strings
  jlman man dict
  jlman man regex`
	MsgFunExample = `  jlman fun dict
  jlman fun integers --extended`
	MsgTreeExample = `  jlman tree
  jlman tree Real`

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrExport     = "failed to export catalog: %w"
)
