// Package discovery walks source trees and selects the files a pysweep command inspects.
package discovery
