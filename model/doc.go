/*
Package model holds the version independent, strongly typed results of the
daemon's RPC methods.

Every type here is produced by the IntoModel method of a wire type from one of
the version packages (v17 ... v28) and is fully valid once constructed:
identifiers are parsed, amounts are fixed-point satoshi values and integers are
sized to their true domain. Fields that only some daemon versions report are
pointers (or nil slices) and are left nil when the answering version does not
produce them.

# Example

	var reply v21.GetMempoolEntry
	if err := json.Unmarshal(raw, &reply); err != nil {
		return err
	}
	entry, err := reply.IntoModel()
	if err != nil {
		var e *v21.MempoolEntryError
		if errors.As(err, &e) && e.Kind == v21.MempoolEntryErrWtxid {
			// bad wtxid from the daemon
		}
		return err
	}
	fmt.Println(entry.Vsize, entry.Fees.Base)

Maps are keyed by parsed identifiers and are unordered; slices keep the order
the daemon reported.
*/
package model
