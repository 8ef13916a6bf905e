/*
Package rabbitmq provides a RabbitMQ adapter for the notification port.
It maps Send to an AMQP publish, includes an auto-reconnect publisher, and
supports optional header propagation via a port.HeaderPropagator.
*/
package rabbitmq
