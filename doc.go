// Package lokat loads and serves locale translation dictionaries with
// instance-scoped caching.
//
// The runtime has three pieces. A Cache memoizes dictionaries per locale and
// collapses concurrent loads for the same locale into one loader call. A
// Switcher owns the current locale identity and the current dictionary
// snapshot, swapping the snapshot atomically when a locale change settles.
// Keyed and Indexed bind lookup functions to a switcher; the functions follow
// snapshot swaps without the caller re-fetching anything.
//
// Locale identifiers are plain strings compared by value. Two separately
// constructed caches or switchers never share entries, even for identical
// locales; construct one per tenant or per request when isolation matters.
//
// # Basic Usage
//
// Supply a loader and switch locales; lookups fall back to the key itself
// while a dictionary is missing or still loading:
//
//	loader := lokat.HTTPLoader(nil, func(locale string) string {
//		return "https://cdn.example.com/i18n/" + locale + ".json"
//	})
//
//	s := lokat.NewSwitcher(loader, "en")
//	t := lokat.Keyed(s)
//
//	if err := s.SetLocale(ctx, "de"); err != nil {
//		// locale identity is already "de"; the snapshot kept its prior value
//	}
//	label := t("checkout.submit")
//
// # Compiled Keyspaces
//
// The lokat-gen command (see the gen package) compiles per-locale JSON
// dictionaries into arrays addressed by contiguous integer ids, validated for
// structural consistency against a reference locale. Those artifacts load
// through TableLoader and resolve through an indexed translator:
//
//	s := lokat.NewSwitcher(lokat.TableLoader(artifactsFS, "buttons"), "en")
//	t := lokat.Indexed(s)
//	ok := t(int(messages.ButtonsOk))
//
// # Warming and Observation
//
// Preload fills the cache for a locale ahead of a switch without touching the
// current snapshot. Subscribers observe locale changes (fired synchronously,
// before the load starts), snapshot swaps, and load failures:
//
//	_ = s.Preload(ctx, "fr")
//	cancel := s.SubscribeLocale(func(locale string) { render() })
//	defer cancel()
package lokat
