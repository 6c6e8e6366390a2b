// Package extra provides optional rules that are not part of the built-in
// set: identifiers (uuid, slug, hex, base64, currency, creditCard),
// network formats (url, ip, ipv4, ipv6, mac, phone), dates (date, after,
// before, minAge) and passwords (password, notCommon).
//
// Register them as a plugin, globally or on a dedicated registry:
//
//	validator.Use(extra.Plugin())
//
//	reg := validator.NewRegistry()
//	reg.Use(extra.Plugin(extra.WithClock(clock.Now)))
//
// Their messages are not in the built-in dictionaries. Merge En into the
// dictionary in use:
//
//	i18n.SetCurrent(i18n.CreateLang(i18n.En(), extra.En()))
package extra
