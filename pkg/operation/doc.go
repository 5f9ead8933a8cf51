/*
Package operation implements the core processing paths for sepsync.

	  change event                 manual trigger
	       |                             |
	+------+------+               +------+------+
	|  Processor  | <------------ |   Sweeper   |
	| (one file)  |   per batch   | (whole vault)
	+------+------+               +-------------+
	       |
	 read → normalize → write-if-changed

🎯 Purpose:
- Processor: single-file read → normalize → conditional write, guarded by a
  per-file advisory lock shared with the sweep path
- Sweeper: one-shot whole-vault pass, batches of 20 processed concurrently,
  batches sequential, per-file errors counted but never fatal

🔄 Flow:
1. Sweeper enumerates eligible files and claims the sweep slot
2. Each batch runs through the Processor concurrently and settles fully
3. Progress goes to the Notifier after every batch
4. The sweep slot is released on every exit path

Two concurrent writers on the same file are prevented at the Processor
level: whichever path acquires the in-flight marker first wins, the other
skips. There is no retry; a skipped or failed file waits for its next
triggering event.
*/
package operation
