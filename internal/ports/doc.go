// Package ports holds the interfaces the cakeshop layers meet at. The shop
// service and connected components are served through them by the HTTP and
// live adapters, and cakectl reaches a remote shop through ShopClient.
package ports
