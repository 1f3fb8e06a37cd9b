package source

import (
	"net/http"
	"net/url"

	"golang.org/x/net/http/httpproxy"
)

// WithProxy routes requests through explicit proxies. Empty values fall
// back to HTTP_PROXY, HTTPS_PROXY and NO_PROXY.
func WithProxy(httpProxy, httpsProxy, noProxy string) FetcherOption {
	return func(f *Fetcher) {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = proxyFunc(httpProxy, httpsProxy, noProxy)
		f.httpClient.Transport = transport
	}
}

func proxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" && noProxy == "" {
		return http.ProxyFromEnvironment
	}

	cfg := httpproxy.FromEnvironment()
	if httpProxy != "" {
		cfg.HTTPProxy = httpProxy
	}
	if httpsProxy != "" {
		cfg.HTTPSProxy = httpsProxy
	}
	if noProxy != "" {
		cfg.NoProxy = noProxy
	}

	proxy := cfg.ProxyFunc()
	return func(req *http.Request) (*url.URL, error) {
		return proxy(req.URL)
	}
}
