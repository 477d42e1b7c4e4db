/*
Package operation runs dvserialize operations over a tree of notes.

	+-------------+
	|   Source    |
	| (walk.Walk) |
	+------+------+
	       |
	+------+------+
	|  Operation  |
	| (serialize, |
	|  restore,   |
	|  clean)     |
	+------+------+
	       |
	+------+------+
	|   Status    |
	| (files and  |
	|  tracking)  |
	+-------------+

🎯 Purpose:
- Pulls candidates from a Source one at a time
- Rewrites query blocks, or previews the rewrite in dry run mode
- Delegates every filesystem change to status.FileManager
- Records the outcome of each file for the run summary

🔄 Serialize flow, per file:
1. Announce the path
2. Read the content
3. Transform; no match leaves the file untouched
4. Dry run: print the rewritten text (and a diff when asked)
5. Live: move the file to <file>.orig, then write the new content

Files are processed sequentially and the first error stops the run. The
backup rename always happens before the write.

🔍 Example:

	op, err := operation.NewSerializeOperation(operation.Options{
		Source:      walk.New(root, nil),
		Files:       mgr,
		Reporter:    mgr,
		Transformer: text.NewQueryTransformer(),
	})
	if err != nil {
		return err
	}
	ctx = log.NewContext(ctx, logger)
	err = operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, "serialize", op)
*/
package operation
