/*
Package vault abstracts the document store that holds the user's notes.

	+-----------+     events      +-----------+
	|  Store    | --------------> | consumers |
	| (Disk)    | <-- read/write  | (operation,
	+-----------+                 |  watch cmd)
	      |                       +-----------+
	+-----+-----+
	|  Filter   |  eligibility (extension + excluded prefixes)
	+-----------+

🎯 Purpose:
- Read, write and enumerate markdown files by vault-relative path
- Deliver change notifications for files in the vault
- Decide which files are eligible for normalization

The only shipped implementation is DiskStore, backed by a directory tree and
fsnotify. Everything downstream depends on the Store interface, so tests run
against in-memory fakes.
*/
package vault
