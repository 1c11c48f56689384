//go:build !windows

package platform

// AcquireSingleInstance always succeeds outside Windows. The guard
// exists for the double-click scenario, where a second console window
// would silently start a second monitor; launching from a shell gives
// the user enough feedback already.
func AcquireSingleInstance(name string) (release func(), ok bool) {
	return func() {}, true
}
