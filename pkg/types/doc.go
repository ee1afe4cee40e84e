// Package types defines the Bag property store, the Host interface for
// types that compose a Bag, convention-name dispatch (Call), and the
// errors dispatch reports.
//
// A host embeds a Bag and exposes the bag operations it wants:
//
//	type Widget struct {
//		types.Bag
//	}
//
//	w := &Widget{}
//	w.SetData("colour", "red")
//	v, err := types.Call(w, "getColour") // "red", nil
package types
