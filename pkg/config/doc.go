/*
Package config loads the optional dvserialize configuration file.

	            +-------------+
	            |   Config    |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	+---------+   +---------+   +---------+

A config file is optional. When none is given, Discover looks for
.dvserialize.{yaml,yml,json,hcl} in the walk root and falls back to
Default. Unknown keys are rejected in every format.

Fields:
  - ignore_patterns: doublestar globs, matched against root relative paths
  - dry_run: preview instead of rewriting
  - diff: print a line diff alongside each preview

🔍 Example:

	cfg, err := config.Discover(ctx, root, "")
	if err != nil {
		return err
	}
	filter := walk.Chain(walk.MarkdownFilter, walk.IgnorePatterns(cfg.IgnorePatterns))
*/
package config
