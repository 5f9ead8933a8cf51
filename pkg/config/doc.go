/*
Package config manages user settings parsing and validation for sepsync.

	            +-------------+
	            |  Settings   |
	            | (os_type,   |
	            |  excludes)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+----+
	|   YAML    | |  JSON   | |   HCL    |
	|  Parser   | | Parser  | |  Parser  |
	+-----------+ +---------+ +----------+

🎯 Purpose:
- Loads persisted settings merged key-by-key over defaults
- Validates the separator convention selector
- Resolves the target separator for the host OS
- Supports multiple settings formats

🔄 Flow:
1. Reads the settings file (missing file means defaults)
2. Parses format-specific syntax
3. Merges loaded values over Default()
4. Validates and hands the settings to other packages

📝 Design Philosophy:
Settings loading never leaves the caller without a usable value: every key
has a default and a loaded file only overrides the keys it actually sets.
A file that exists but cannot be parsed is surfaced as an error rather than
silently ignored, since a typo in an exclusion list would otherwise rewrite
files the user meant to protect.
*/
package config
