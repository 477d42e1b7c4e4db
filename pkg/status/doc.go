/*
Package status owns every file system mutation dvserialize performs and keeps
a record of what happened to each visited file.

	+-------------+
	|  operation  |
	+------+------+
	       |
	+------+------+
	|   Manager   |
	+------+------+
	       |
	+------+------+-----------+
	|             |           |
	ReadFile   BackupFile   WriteFile
	           (rename to   (temp file +
	            .orig)       rename)

A live rewrite is always BackupFile followed by WriteFile. WriteFile only
runs once the backup rename has succeeded.

RestoreFile and RemoveBackup undo or finalize a previous run.

Example:

	mgr := status.New(nil)
	if err := mgr.BackupFile(ctx, path); err != nil {
		return err
	}
	if err := mgr.WriteFile(ctx, path, content); err != nil {
		return err
	}
	mgr.TrackFile(ctx, status.FileInfo{Path: path, Status: status.StatusSerialized, Queries: n})
*/
package status
